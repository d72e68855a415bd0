package config

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息
// 说明：将YAML配置转换为运行时可用的配置对象，补全缺省值
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，补全缺省值
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 说明：steps_per_frame缺省为1
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	if rc.C.StepsPerFrame <= 0 {
		rc.C.StepsPerFrame = 1
	}

	return rc
}
