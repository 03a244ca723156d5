package nest

import (
	"path/filepath"
	"runtime"
	"strings"
)

// FileStem returns the base name of the calling source file without its
// extension. Handy for naming a command after the file that defines it:
//
//	func cmd() *nest.Command[string] {
//		return nest.NewCommand[string](nest.FileStem()). // file foo.go -> command "foo"
//			Description("Shows foo")
//	}
func FileStem() string {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return ""
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
