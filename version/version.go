package version

import (
	"fmt"
	"runtime"
)

// 构建时通过 -ldflags "-X" 注入
var (
	Version   = "dev"
	GitCommit = ""
	BuildTS   = ""
)

func Info() string {
	return fmt.Sprintf("Version: %s\nGit Commit: %s\nBuild Time: %s\nGo Version: %s\n",
		Version, GitCommit, BuildTS, runtime.Version())
}

func Printer() {
	fmt.Print(Info())
}
