// namespace.go defines the known plugin namespaces and filter functions.

package plugin

// Namespace identifies an external filter plugin within the host, the same
// way a plugin namespace identifies it in a scripting frontend.
type Namespace string

const (
	// NamespaceStd is the host's standard function set (plane shuffling,
	// binarization, expression evaluation, edge detection, statistics).
	NamespaceStd = Namespace("std")

	// NamespaceResize is the host's format/depth conversion kernel set.
	NamespaceResize = Namespace("resize")

	// NamespaceKNLMeans is the OpenCL non-local-means denoiser.
	NamespaceKNLMeans = Namespace("knlm")

	// NamespaceTNLMeans is the temporal non-local-means denoiser.
	NamespaceTNLMeans = Namespace("tnlm")

	// NamespaceDFTTest is the DFT-domain denoiser.
	NamespaceDFTTest = Namespace("dfttest")

	// NamespaceBM3D is the block-matching 3D-domain denoiser.
	NamespaceBM3D = Namespace("bm3d")

	// NamespaceAdaptiveGrain is the luma-adaptive mask generator.
	NamespaceAdaptiveGrain = Namespace("adg")

	// NamespaceRemoveGrain is the integer-depth despeckle/smoothing set.
	NamespaceRemoveGrain = Namespace("rgvs")

	// NamespaceRemoveGrainS is the float-depth despeckle/smoothing set.
	NamespaceRemoveGrainS = Namespace("rgsf")

	// NamespaceBilateral provides the Gaussian-family pre-blur.
	NamespaceBilateral = Namespace("bilateral")

	// NamespaceSMDegrain is the motion-compensated degrain wrapper
	// (an optional dependency in every host).
	NamespaceSMDegrain = Namespace("smdegrain")

	// NamespaceRangeMask is the range/detail mask generator
	// (an optional dependency in every host).
	NamespaceRangeMask = Namespace("rangemask")
)

func (ns Namespace) String() string {
	return string(ns)
}

// Function is the name of one filter function within a namespace.
type Function string

const (
	FuncShufflePlanes = Function("ShufflePlanes")
	FuncBinarize      = Function("Binarize")
	FuncExpr          = Function("Expr")
	FuncPrewitt       = Function("Prewitt")
	FuncPlaneStats    = Function("PlaneStats")
	FuncPoint         = Function("Point")
	FuncKNLMeansCL    = Function("KNLMeansCL")
	FuncTNLMeans      = Function("TNLMeans")
	FuncDFTTest       = Function("DFTTest")
	FuncBM3D          = Function("BM3D")
	FuncMask          = Function("Mask")
	FuncRemoveGrain   = Function("RemoveGrain")
	FuncGaussian      = Function("Gaussian")
	FuncSMDegrain     = Function("SMDegrain")
	FuncRangeMask     = Function("RangeMask")
)

func (fn Function) String() string {
	return string(fn)
}
