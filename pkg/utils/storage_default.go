//go:build !android

package utils

// EnsureStorageDir 非 Android 平台上 gdata 自行创建存储目录，这里什么也不做
func EnsureStorageDir() error {
	return nil
}
