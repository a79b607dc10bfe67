package maths

import (
	"cmp"
	"container/heap"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/integrate/quad"
)

// 自适应求积默认参数
const (
	defaultQuadTol   = 1.49e-8 // 默认容差
	defaultQuadLimit = 200     // 默认最大子区间数
	defaultQuadOrder = 10      // 默认低阶规则阶数（高阶为其两倍）
)

// rule 定义在 [-1, 1] 上的 Gauss-Legendre 节点与权重
type rule struct {
	x, w []float64
}

// newRule 通过 gonum 生成 n 点 Gauss-Legendre 规则
func newRule(n int) rule {
	r := rule{x: make([]float64, n), w: make([]float64, n)}
	quad.Legendre{}.FixedLocations(r.x, r.w, -1, 1)
	return r
}

// Quadrature 全局自适应 Gauss-Legendre 求积
// 每个子区间用 n 点与 2n 点规则之差作为误差估计，
// 每次二分误差最大的子区间，直到总误差满足容差。
type Quadrature struct {
	AbsTol float64 // 绝对容差
	RelTol float64 // 相对容差
	Limit  int     // 最大子区间数

	low, high rule
}

// NewQuadrature 创建自适应求积器，非正参数使用默认值
func NewQuadrature(absTol, relTol float64, limit, order int) *Quadrature {
	if absTol <= 0 {
		absTol = defaultQuadTol
	}
	if relTol <= 0 {
		relTol = defaultQuadTol
	}
	if limit <= 0 {
		limit = defaultQuadLimit
	}
	if order <= 0 {
		order = defaultQuadOrder
	}
	return &Quadrature{
		AbsTol: absTol,
		RelTol: relTol,
		Limit:  limit,
		low:    newRule(order),
		high:   newRule(2 * order),
	}
}

// Method 积分方法
func (q *Quadrature) Method() Method { return MethodQuadrature }

// panel 子区间
type panel struct {
	a, b  float64
	value complex128
	err   float64
}

// panelHeap 按误差排序的最大堆
type panelHeap []panel

func (h panelHeap) Len() int           { return len(h) }
func (h panelHeap) Less(i, j int) bool { return h[i].err > h[j].err }
func (h panelHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *panelHeap) Push(x any)        { *h = append(*h, x.(panel)) }
func (h *panelHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// Integrate 计算 ∫_a^b f(x)dx
func (q *Quadrature) Integrate(f Func, a, b float64) (complex128, error) {
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := q.Integrate(f, b, a)
		return -v, err
	}
	first, err := q.panel(f, a, b)
	if err != nil {
		return 0, err
	}
	panels := &panelHeap{first}
	for {
		value, errSum := panels.sum()
		if errSum <= tolerance(q.AbsTol, q.RelTol, cmplx.Abs(value)) {
			return value, nil
		}
		if panels.Len() >= q.Limit {
			return value, &ConvergenceError{
				Method: MethodQuadrature, A: a, B: b,
				Estimate: value, ErrEst: errSum, Steps: panels.Len(),
			}
		}
		// 二分误差最大的子区间
		worst := heap.Pop(panels).(panel)
		mid := worst.a + (worst.b-worst.a)/2
		left, err := q.panel(f, worst.a, mid)
		if err != nil {
			return 0, err
		}
		right, err := q.panel(f, mid, worst.b)
		if err != nil {
			return 0, err
		}
		heap.Push(panels, left)
		heap.Push(panels, right)
	}
}

// sum 按区间左端点顺序求和，保证结果与堆内部排列无关
func (h panelHeap) sum() (complex128, float64) {
	sorted := make([]panel, len(h))
	copy(sorted, h)
	slices.SortFunc(sorted, func(x, y panel) int { return cmp.Compare(x.a, y.a) })
	var re, im, errSum float64
	for _, p := range sorted {
		re += real(p.value)
		im += imag(p.value)
		errSum += p.err
	}
	return complex(re, im), errSum
}

// panel 在单个子区间上计算高低两阶规则
func (q *Quadrature) panel(f Func, a, b float64) (panel, error) {
	lo, err := q.low.apply(f, a, b)
	if err != nil {
		return panel{}, err
	}
	hi, err := q.high.apply(f, a, b)
	if err != nil {
		return panel{}, err
	}
	return panel{a: a, b: b, value: hi, err: cmplx.Abs(hi - lo)}, nil
}

// apply 将规则映射到 [a, b]，实部与虚部分别累加
func (r rule) apply(f Func, a, b float64) (complex128, error) {
	half, center := (b-a)/2, (a+b)/2
	var re, im float64
	for i, x := range r.x {
		v, err := f(center + half*x)
		if err != nil {
			return 0, err
		}
		re += r.w[i] * real(v)
		im += r.w[i] * imag(v)
	}
	return complex(half*re, half*im), nil
}
