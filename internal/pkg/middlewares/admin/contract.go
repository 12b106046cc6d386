package admin

type Authorizer interface {
	Authorize(actor, token string) error
}
