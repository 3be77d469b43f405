package components

// ParticleComponent 标记一个爆散粒子
//
// 粒子飞行本身由动画系统的插值任务驱动，这里只记录粒子是否已经
// 失效。失效的粒子不会从实体管理器中删除，只会被隐藏，
// 渲染器据此跳过它。
type ParticleComponent struct {
	Inert bool // 飞行结束后置为 true
}
