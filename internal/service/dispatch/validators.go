package dispatch

import (
	"strings"

	"tracker/internal/entities"
)

const (
	StepBasicInfo = iota + 1
	StepDestination
	StepLines
	StepAdditional

	Steps = StepAdditional
)

func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// ValidateStep количества проверяются только на наличие, разбор числа
// откладывается до отправки.
func ValidateStep(step int, form entities.DispatchForm) bool {
	switch step {
	case StepBasicInfo:
		b := form.BasicInfo
		return filled(
			b.OfflineApprovalNumber,
			b.TransporterName,
			b.TransporterCode,
			b.LTIDate,
			b.OriginCO,
			b.OriginLocation,
			b.OriginSLDesc,
		)
	case StepDestination:
		return filled(form.Destination.DestinationLocation, form.Destination.DestinationSL)
	case StepLines:
		if len(form.Lines) == 0 {
			return false
		}
		for _, line := range form.Lines {
			if !filled(line.CommodityDescription, line.NetQuantity, line.GrossQuantity) {
				return false
			}
		}
		return true
	case StepAdditional:
		return true
	default:
		return false
	}
}
