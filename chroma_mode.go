// chroma_mode.go defines the ChromaMode enum and its methods.

package avdenoise

import (
	"fmt"
	"strings"
)

// ChromaMode selects the chroma denoising filter used by QuickDenoise.
type ChromaMode int

const (
	ChromaModeUndefined  = ChromaMode(0x0)
	ChromaModeKNLMeansCL = ChromaMode(0x1)
	ChromaModeTNLMeans   = ChromaMode(0x2)
	ChromaModeDFTTest    = ChromaMode(0x3)
	ChromaModeSMDegrain  = ChromaMode(0x4)
)

func ChromaModes() []ChromaMode {
	return []ChromaMode{
		ChromaModeKNLMeansCL,
		ChromaModeTNLMeans,
		ChromaModeDFTTest,
		ChromaModeSMDegrain,
	}
}

func (m ChromaMode) String() string {
	switch m {
	case ChromaModeKNLMeansCL:
		return "knlm"
	case ChromaModeTNLMeans:
		return "tnlm"
	case ChromaModeDFTTest:
		return "dft"
	case ChromaModeSMDegrain:
		return "smd"
	default:
		return "ChromaMode(" + fmt.Sprintf("%d", int(m)) + ")"
	}
}

// ParseChromaMode resolves a chroma mode name. Names are matched
// case-insensitively; both the short and the full filter names are
// accepted, and the numeric aliases of the old interface keep working.
func ParseChromaMode(s string) (ChromaMode, error) {
	switch strings.ToLower(s) {
	case "1", "knlm", "knlmeanscl":
		return ChromaModeKNLMeansCL, nil
	case "2", "tnlm", "tnlmeans":
		return ChromaModeTNLMeans, nil
	case "3", "dft", "dfttest":
		return ChromaModeDFTTest, nil
	case "4", "smd", "smdegrain":
		return ChromaModeSMDegrain, nil
	}
	return ChromaModeUndefined, ErrUnknownChromaMode{Mode: s}
}
