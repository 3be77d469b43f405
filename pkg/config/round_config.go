package config

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// 配置文件格式
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// RoundConfig 单局跳伞的全部调参常量
//
// 默认值来自原版街机游戏。配置文件只需写出想覆盖的字段，
// 未出现的字段保留 DefaultRoundConfig 中的值。
//
// 配置文件位置: data/round.yaml（内嵌），或通过 --config 指定 .yaml/.toml 文件
type RoundConfig struct {
	Screen     ScreenConfig     `yaml:"screen" toml:"screen"`
	Wind       Range            `yaml:"wind" toml:"wind"`
	Ground     GroundConfig     `yaml:"ground" toml:"ground"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Helicopter HelicopterConfig `yaml:"helicopter" toml:"helicopter"`
	Jumper     SizeConfig       `yaml:"jumper" toml:"jumper"`
	Parachute  ParachuteConfig  `yaml:"parachute" toml:"parachute"`
	Countdown  CountdownConfig  `yaml:"countdown" toml:"countdown"`
	Splat      SplatConfig      `yaml:"splat" toml:"splat"`
}

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// SizeConfig 实体尺寸
type SizeConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// GroundConfig 着陆地面
type GroundConfig struct {
	// Width 地面宽度范围，左闭右开，取整
	Width Range `yaml:"width" toml:"width"`
	// Height 地面高度范围，左闭右开，取整
	Height Range `yaml:"height" toml:"height"`
	// RiseDuration 开局时地面从屏幕下方升起的时长（秒）
	RiseDuration float64 `yaml:"riseDuration" toml:"riseDuration"`
}

// PhysicsConfig 跳伞者物理参数
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity" toml:"gravity"`
	SafeVelocity    float64 `yaml:"safeVelocity" toml:"safeVelocity"`
	LaunchVelocityX float64 `yaml:"launchVelocityX" toml:"launchVelocityX"`
}

// HelicopterConfig 直升机
type HelicopterConfig struct {
	Y              float64 `yaml:"y" toml:"y"`
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
	ScrollDuration float64 `yaml:"scrollDuration" toml:"scrollDuration"` // 横穿一屏所需秒数
	FrameDuration  float64 `yaml:"frameDuration" toml:"frameDuration"`   // 旋翼每帧秒数
}

// ParachuteConfig 降落伞
type ParachuteConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`

	// 开伞时按比例缩减的系数
	AccelFactor      float64 `yaml:"accelFactor" toml:"accelFactor"`
	VerticalFactor   float64 `yaml:"verticalFactor" toml:"verticalFactor"`
	HorizontalFactor float64 `yaml:"horizontalFactor" toml:"horizontalFactor"`
}

// CountdownConfig 开局倒计时
type CountdownConfig struct {
	Steps        int     `yaml:"steps" toml:"steps"`
	StepDuration float64 `yaml:"stepDuration" toml:"stepDuration"`
}

// SplatConfig 摔落时的粒子爆散
type SplatConfig struct {
	Count    Range `yaml:"count" toml:"count"` // 左闭右开，取整
	Size     Range `yaml:"size" toml:"size"`
	Duration Range `yaml:"duration" toml:"duration"`
	Radius   Range `yaml:"radius" toml:"radius"`
	Color    RGB   `yaml:"color" toml:"color"`
}

// RGB 不透明颜色
type RGB struct {
	R uint8 `yaml:"r" toml:"r"`
	G uint8 `yaml:"g" toml:"g"`
	B uint8 `yaml:"b" toml:"b"`
}

// Color 转换为 image/color 的不透明颜色
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Range 左闭右开的均匀采样区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// Sample 在 [Min, Max) 中均匀采样；Min == Max 时返回 Min
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// SampleInt 采样后向下取整
func (r Range) SampleInt(rng *rand.Rand) int {
	return int(math.Floor(r.Sample(rng)))
}

// Contains 判断 v 是否落在 [Min, Max) 内（Min == Max 时只接受 Min）
func (r Range) Contains(v float64) bool {
	if r.Max <= r.Min {
		return v == r.Min
	}
	return v >= r.Min && v < r.Max
}

func (r Range) validate(name string) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return fmt.Errorf("%s range contains NaN", name)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%s range invalid: min(%.2f) > max(%.2f)", name, r.Min, r.Max)
	}
	if r.Min < 0 {
		return fmt.Errorf("%s range invalid: min(%.2f) < 0", name, r.Min)
	}
	return nil
}

// DefaultRoundConfig 返回原版游戏的参数
func DefaultRoundConfig() *RoundConfig {
	return &RoundConfig{
		Screen: ScreenConfig{Width: ScreenWidth, Height: ScreenHeight},
		Wind:   Range{Min: 25, Max: 150},
		Ground: GroundConfig{
			Width:        Range{Min: 200, Max: 600},
			Height:       Range{Min: 50, Max: 150},
			RiseDuration: 1.0,
		},
		Physics: PhysicsConfig{
			Gravity:         300,
			SafeVelocity:    500,
			LaunchVelocityX: 25,
		},
		Helicopter: HelicopterConfig{
			Y:              10,
			Width:          120,
			Height:         50,
			ScrollDuration: 5.0,
			FrameDuration:  0.075,
		},
		Jumper: SizeConfig{Width: 20, Height: 32},
		Parachute: ParachuteConfig{
			Width:            48,
			Height:           40,
			AccelFactor:      0.1,
			VerticalFactor:   0.1,
			HorizontalFactor: 0.25,
		},
		Countdown: CountdownConfig{Steps: 3, StepDuration: 1.0},
		Splat: SplatConfig{
			Count:    Range{Min: 10, Max: 15},
			Size:     Range{Min: 2, Max: 4},
			Duration: Range{Min: 1.75, Max: 2.25},
			Radius:   Range{Min: 25, Max: 75},
			Color:    RGB{R: 255},
		},
	}
}

// LoadRoundConfig 从文件加载单局配置
//
// 根据扩展名选择格式：.yaml/.yml 使用 YAML，.toml 使用 TOML。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *RoundConfig: 覆盖到默认值之上并通过校验的配置
//   - error: 读取、解析或校验失败
func LoadRoundConfig(path string) (*RoundConfig, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read round config: %w", err)
	}

	return ParseRoundConfig(data, format)
}

// ParseRoundConfig 解析配置数据（内嵌的 data/round.yaml 走这里）
//
// 参数:
//   - data: 配置内容
//   - format: FormatYAML 或 FormatTOML
func ParseRoundConfig(data []byte, format string) (*RoundConfig, error) {
	cfg := DefaultRoundConfig()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse round config: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse round config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported round config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid round config: %w", err)
	}
	return cfg, nil
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported round config extension %q", filepath.Ext(path))
	}
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 第一个不合法的字段，全部合法时返回 nil
func (c *RoundConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", c.Screen.Width, c.Screen.Height)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"wind", c.Wind},
		{"ground width", c.Ground.Width},
		{"ground height", c.Ground.Height},
		{"splat count", c.Splat.Count},
		{"splat size", c.Splat.Size},
		{"splat duration", c.Splat.Duration},
		{"splat radius", c.Splat.Radius},
	}
	for _, item := range ranges {
		if err := item.r.validate(item.name); err != nil {
			return err
		}
	}

	if c.Ground.Width.Max > c.Screen.Width {
		return fmt.Errorf("ground width max(%.0f) exceeds screen width(%.0f)", c.Ground.Width.Max, c.Screen.Width)
	}
	if c.Ground.Height.Max >= c.Screen.Height {
		return fmt.Errorf("ground height max(%.0f) must be below screen height(%.0f)", c.Ground.Height.Max, c.Screen.Height)
	}
	if c.Ground.RiseDuration < 0 {
		return fmt.Errorf("ground rise duration must be >= 0, got %.2f", c.Ground.RiseDuration)
	}

	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %.2f", c.Physics.Gravity)
	}
	if c.Physics.SafeVelocity <= 0 {
		return fmt.Errorf("safe velocity must be positive, got %.2f", c.Physics.SafeVelocity)
	}

	if c.Helicopter.ScrollDuration <= 0 {
		return fmt.Errorf("helicopter scroll duration must be positive, got %.2f", c.Helicopter.ScrollDuration)
	}
	if c.Helicopter.FrameDuration <= 0 {
		return fmt.Errorf("helicopter frame duration must be positive, got %.3f", c.Helicopter.FrameDuration)
	}
	if c.Helicopter.Width <= 0 || c.Helicopter.Height <= 0 {
		return fmt.Errorf("helicopter size must be positive")
	}
	if c.Jumper.Width <= 0 || c.Jumper.Height <= 0 {
		return fmt.Errorf("jumper size must be positive")
	}

	factors := []struct {
		name  string
		value float64
	}{
		{"accelFactor", c.Parachute.AccelFactor},
		{"verticalFactor", c.Parachute.VerticalFactor},
		{"horizontalFactor", c.Parachute.HorizontalFactor},
	}
	for _, f := range factors {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("parachute %s must be in [0, 1], got %.2f", f.name, f.value)
		}
	}

	if c.Countdown.Steps < 1 {
		return fmt.Errorf("countdown steps must be >= 1, got %d", c.Countdown.Steps)
	}
	if c.Countdown.StepDuration <= 0 {
		return fmt.Errorf("countdown step duration must be positive, got %.2f", c.Countdown.StepDuration)
	}

	if c.Splat.Duration.Min <= 0 {
		return fmt.Errorf("splat duration min must be positive, got %.2f", c.Splat.Duration.Min)
	}

	return nil
}
