package types

// Input 输入文件中的全部参数（物理单位）
// yaml 标签同时作为 .value 输入文件中的参数名。
type Input struct {
	// 偶极矩阵元
	RdgAu float64 `yaml:"rdg_au"` // 基态到共振态
	CdgAu float64 `yaml:"cdg_au"` // 基态到连续态（由 q 推导时忽略）

	// 共振态与末态
	ErAEV      float64 `yaml:"Er_a_eV"`    // 共振态 a 能量
	ErBEV      float64 `yaml:"Er_b_eV"`    // 共振态 b 能量
	TauAS      float64 `yaml:"tau_a_s"`    // 共振态 a 寿命
	TauBS      float64 `yaml:"tau_b_s"`    // 共振态 b 寿命
	EFinEV     float64 `yaml:"E_fin_eV"`   // 第一末态能量
	TauS       float64 `yaml:"tau_s"`      // 第一末态衰变寿命
	EFin2EV    float64 `yaml:"E_fin_eV_2"` // 第二末态能量
	Tau2S      float64 `yaml:"tau_s_2"`    // 第二末态衰变寿命
	InteractEV float64 `yaml:"interact_eV"`

	// XUV 脉冲
	OmegaEV float64 `yaml:"Omega_eV"` // 中心光子能量
	NX      float64 `yaml:"n_X"`      // 周期数
	IX      float64 `yaml:"I_X"`      // 强度 W/cm²
	XSinSq  bool    `yaml:"X_sinsq"`  // 选择 sin² 形状
	XGauss  bool    `yaml:"X_gauss"`  // 选择高斯形状
	XShape  string  `yaml:"X_shape"`  // 形状名称，优先于布尔选择
	XField  string  `yaml:"Xshape"`   // convoluted 或 infinite

	// IR 脉冲
	OmegaLEV   float64 `yaml:"omega_eV"`     // 光子能量
	NL         float64 `yaml:"n_L"`          // 周期数
	IL         float64 `yaml:"I_L"`          // 强度 W/cm²
	LShape     string  `yaml:"Lshape"`       // 形状名称
	DeltaTS    float64 `yaml:"delta_t_s"`    // 两脉冲延迟
	ShiftStepS float64 `yaml:"shift_step_s"` // 延迟扫描步长
	Phi        float64 `yaml:"phi"`          // 载波包络相位
	Q          float64 `yaml:"q"`            // Fano 参数
	FWHML      float64 `yaml:"FWHM_L"`       // 半高全宽（秒）

	// 模拟网格
	TMaxS     float64 `yaml:"tmax_s"`     // 最大模拟时间
	TimestepS float64 `yaml:"timestep_s"` // 时间步长
	EStepEV   float64 `yaml:"E_step_eV"`  // 能量步长
	EMinEV    float64 `yaml:"E_min_eV"`   // 最小动能
	EMaxEV    float64 `yaml:"E_max_eV"`   // 最大动能

	// 积分方法
	Integ      string `yaml:"integ"`       // 内层积分
	IntegOuter string `yaml:"integ_outer"` // 外层积分

	// 振动势能
	Mass1      float64 `yaml:"mass1"` // 原子质量 (amu)
	Mass2      float64 `yaml:"mass2"` // 原子质量 (amu)
	GradDelta  float64 `yaml:"grad_delta"`
	REqAA      float64 `yaml:"R_eq_AA"`   // 平衡核间距 (Å)
	GsDe       float64 `yaml:"gs_de"`     // 基态 Morse 阱深 (eV)
	GsA        float64 `yaml:"gs_a"`      // 基态 Morse 宽度参数 (1/Å)
	GsReq      float64 `yaml:"gs_Req"`    // 基态平衡距离 (Å)
	GsConst    float64 `yaml:"gs_const"`  // 基态能量偏移 (eV)
	ResDe      float64 `yaml:"res_de"`    // 共振态 Morse 阱深 (eV)
	ResA       float64 `yaml:"res_a"`     // 共振态 Morse 宽度参数 (1/Å)
	ResReq     float64 `yaml:"res_Req"`   // 共振态平衡距离 (Å)
	ResConst   float64 `yaml:"res_const"` // 共振态能量偏移 (eV)
	FinA       float64 `yaml:"fin_a"`
	FinB       float64 `yaml:"fin_b"`
	FinC       float64 `yaml:"fin_c"`
	FinD       float64 `yaml:"fin_d"`
	FinPotType string  `yaml:"fin_pot_type"`

	// 运行选项
	IRCoupling      string  `yaml:"ir_coupling"`       // none 或 suppressed
	OnFailure       string  `yaml:"on_failure"`        // abort 或 flag
	Workers         int     `yaml:"workers"`           // 能量并行数
	QuadTol         float64 `yaml:"quad_tol"`          // 自适应求积容差
	QuadLimit       int     `yaml:"quad_limit"`        // 自适应求积子区间上限
	RombergTol      float64 `yaml:"romberg_tol"`       // Romberg 容差
	RombergMaxLevel int     `yaml:"romberg_max_level"` // Romberg 最大层数
}

// Defaults 填充未设置的运行选项
func (in *Input) Defaults() {
	if in.XField == "" {
		in.XField = "convoluted"
	}
	if in.IRCoupling == "" {
		in.IRCoupling = CouplingNone.String()
	}
	if in.OnFailure == "" {
		in.OnFailure = PolicyAbort.String()
	}
	if in.QuadTol == 0 {
		in.QuadTol = QuadTolerance
	}
	if in.QuadLimit == 0 {
		in.QuadLimit = QuadLimit
	}
	if in.RombergTol == 0 {
		in.RombergTol = RombergTolerance
	}
	if in.RombergMaxLevel == 0 {
		in.RombergMaxLevel = RombergMaxLevel
	}
}

// ShapeName 选择的 XUV 形状名称，兼容 X_sinsq/X_gauss 布尔写法
func (in *Input) ShapeName() string {
	switch {
	case in.XShape != "":
		return in.XShape
	case in.XSinSq:
		return "sinsq"
	case in.XGauss:
		return "gauss"
	}
	return ""
}
