package cmd

import (
	"fmt"

	"github.com/df07/go-raytracing-kernel/pkg/core"
)

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

func fmtVec(v core.Vec3) string {
	return fmt.Sprintf("(%s, %s, %s)", fmtFloat(v.X), fmtFloat(v.Y), fmtFloat(v.Z))
}

func fmtInterval(i core.Interval) string {
	return fmt.Sprintf("[%s, %s]", fmtFloat(i.Min), fmtFloat(i.Max))
}
