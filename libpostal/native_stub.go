//go:build !cgo || !libpostal
// +build !cgo !libpostal

package libpostal

// stubNative stands in when the binary is built without the "libpostal"
// build tag (or without cgo). Every setup fails, so Setup surfaces a
// *SetupError instead of crashing deeper in; the marshaling entry points are
// unreachable behind the lifecycle guard. There is no pure-Go fallback:
// address parsing and expansion are meaningless without the native models.
type stubNative struct{}

func newNative() Native { return stubNative{} }

func (stubNative) SetupBase() bool       { return false }
func (stubNative) SetupParser() bool     { return false }
func (stubNative) SetupClassifier() bool { return false }

func (stubNative) TeardownBase()       {}
func (stubNative) TeardownParser()     {}
func (stubNative) TeardownClassifier() {}

func (stubNative) ParserDefaults() ParserOptions { return ParserOptions{} }

func (stubNative) Parse(string, ParserOptions) ParseResponse { return nil }

func (stubNative) ExpandDefaults() NormalizeOptions { return NormalizeOptions{} }

func (stubNative) Expand(string, NormalizeOptions) Expansion { return nil }
