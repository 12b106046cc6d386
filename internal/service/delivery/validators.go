package delivery

import (
	"strings"

	"tracker/internal/entities"
)

const (
	StepBasicInfo = iota + 1
	StepDriverInfo
	StepLines
	StepNotes

	Steps = StepNotes
)

func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func ValidateStep(step int, form entities.DeliveryForm) bool {
	switch step {
	case StepBasicInfo:
		b := form.BasicInfo
		return filled(b.LTINumber, b.Departure, b.Destination, b.Transporter)
	case StepDriverInfo:
		return filled(form.DriverInfo.SerialNumber, form.DriverInfo.DriverName)
	case StepLines:
		if len(form.Lines) == 0 {
			return false
		}
		for _, line := range form.Lines {
			if !filled(line.MaterialDescription, line.NetQuantity) {
				return false
			}
		}
		return true
	case StepNotes:
		return true
	default:
		return false
	}
}
