package avdenoise

import (
	"fmt"

	"github.com/xaionaro-go/avdenoise/types"
)

type ErrUnsupportedColorFamily struct {
	Format types.VideoFormat
}

func (e ErrUnsupportedColorFamily) Error() string {
	return fmt.Sprintf("the input clip must be YUV, YCoCg or RGB, got '%s'", e.Format)
}

type ErrIndeterminateFormat struct{}

func (e ErrIndeterminateFormat) Error() string {
	return "variable-format clips are not supported"
}

type ErrMissingParameter struct {
	Param string
}

func (e ErrMissingParameter) Error() string {
	return fmt.Sprintf("'%s' is not specified", e.Param)
}

type ErrUnknownChromaMode struct {
	Mode string
}

func (e ErrUnknownChromaMode) Error() string {
	return fmt.Sprintf("unknown chroma denoising mode '%s'", e.Mode)
}
