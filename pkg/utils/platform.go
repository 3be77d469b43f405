//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端行为运行（本地调试触摸布局）
const MobileEmulateEnv = "SKYDIVER_MOBILE_EMULATE"

// IsMobile 是否运行在移动设备上
// 桌面端编译时只受 MobileEmulateEnv 控制
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
