package types

// 默认参数常量定义
var (
	QuadTolerance    = 1.49e-8 // 自适应求积容差
	QuadLimit        = 200     // 自适应求积最大子区间数
	QuadOrder        = 10      // 每个子区间的 Gauss-Legendre 阶数
	RombergTolerance = 1.48e-8 // Romberg 容差
	RombergMaxLevel  = 18      // Romberg 最大二分层数
	RombergMinLevel  = 4       // Romberg 最小二分层数
	GridSlack        = 1e-9    // 网格上界相对步长的容差，抵消浮点舍入
	IROffsetSigmas   = 2.5     // IR 前沿偏移对应的高斯宽度倍数
)
