package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"tracker/internal/entities"
)

type removeLineArgs struct {
	LineID string `json:"lineId"`
}

func AddLine(_ context.Context, form entities.DispatchForm, _ json.RawMessage) (entities.DispatchForm, error) {
	numbers := make([]string, len(form.Lines))
	for i, line := range form.Lines {
		numbers[i] = line.LineNumber
	}

	form.Lines = append(slices.Clone(form.Lines), entities.DispatchLineInput{
		ID:         uuid.NewString(),
		LineNumber: NextLineNumber(numbers),
	})
	return form, nil
}

func RemoveLine(_ context.Context, form entities.DispatchForm, args json.RawMessage) (entities.DispatchForm, error) {
	var req removeLineArgs
	if err := json.Unmarshal(args, &req); err != nil || req.LineID == "" {
		return form, fmt.Errorf("%w: lineId", ErrMissingRequiredFields)
	}

	idx := slices.IndexFunc(form.Lines, func(l entities.DispatchLineInput) bool {
		return l.ID == req.LineID
	})
	if idx < 0 {
		return form, ErrLineNotFound
	}

	form.Lines = slices.Delete(slices.Clone(form.Lines), idx, idx+1)
	return form, nil
}
