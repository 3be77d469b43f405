//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在 gdata 打开之前创建 Android 应用私有目录下的设置目录
//
// gdata 在 Android 上使用 /data/data/{package}/ 作为存储根目录，
// 但不会预先创建子目录。
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	// cmdline 以 NUL 分隔，第一个字段是包名
	pkg := strings.TrimSpace(strings.SplitN(string(cmdline), "\x00", 2)[0])
	if pkg == "" {
		return fmt.Errorf("failed to detect Android package: empty cmdline")
	}

	dir := filepath.Join("/data/data", pkg, "settings")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}
	return nil
}
