//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package terminal

// unsupportedBackend refuses to start on platforms without raw-mode support
type unsupportedBackend struct{}

func newBackend(backendConfig) Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error { return ErrUnsupported }
func (unsupportedBackend) Fini()      {}

func (unsupportedBackend) Size() (int, int, error) { return 0, 0, ErrUnsupported }

func (unsupportedBackend) Read([]byte) (int, error)  { return 0, ErrUnsupported }
func (unsupportedBackend) Write([]byte) (int, error) { return 0, ErrUnsupported }

func resetTerminalMode() {}
