package load

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldest/types"
)

const valueInput = `# 单共振 sin² 脉冲
.value rdg_au 0.5
.value q 5
.value Er_a_eV 150
.value E_fin_eV 70
.value tau_s 2.0e-15
.value Omega_eV 150
.value n_X 3
.value I_X 1e15
.value X_sinsq 1
.value omega_eV 1.6
.value n_L 6
.value I_L 1e12
.value delta_t_s 6e-15
.value FWHM_L 2e-15
.value tmax_s 5e-15
.value timestep_s 1e-17
.value E_step_eV 0.1
.value E_min_eV 75
.value E_max_eV 85
.value integ analytic
.value integ_outer "romberg"
.value workers 4.0
`

const yamlInput = `
rdg_au: 0.5
q: 5
Er_a_eV: 150
E_fin_eV: 70
tau_s: 2.0e-15
Omega_eV: 150
n_X: 3
I_X: 1.0e+15
X_shape: gauss
omega_eV: 1.6
n_L: 6
I_L: 1.0e+12
delta_t_s: 6.0e-15
FWHM_L: 2.0e-15
tmax_s: 5.0e-15
timestep_s: 1.0e-17
E_step_eV: 0.1
E_min_eV: 75
E_max_eV: 85
integ: quadrature
integ_outer: quadrature
on_failure: flag
`

func TestReadValue(t *testing.T) {
	in, err := Read(strings.NewReader(valueInput), FormatValue)
	require.NoError(t, err)
	assert.Equal(t, 0.5, in.RdgAu)
	assert.Equal(t, 2.0e-15, in.TauS)
	assert.True(t, in.XSinSq)
	assert.Equal(t, "sinsq", in.ShapeName())
	assert.Equal(t, "romberg", in.IntegOuter)
	assert.Equal(t, 4, in.Workers)

	c, err := Constants(in)
	require.NoError(t, err)
	assert.NoError(t, Check(c))
	assert.Equal(t, 4, c.Workers)
}

func TestReadYAML(t *testing.T) {
	in, err := Read(strings.NewReader(yamlInput), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "gauss", in.ShapeName())
	assert.Equal(t, "flag", in.OnFailure)

	c, err := Constants(in)
	require.NoError(t, err)
	assert.NoError(t, Check(c))
	assert.Equal(t, types.PolicyFlag, c.Policy)
}

func TestFormatsAgree(t *testing.T) {
	a, err := Read(strings.NewReader(valueInput), FormatValue)
	require.NoError(t, err)
	b, err := Read(strings.NewReader(yamlInput), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, a.ErAEV, b.ErAEV)
	assert.Equal(t, a.IX, b.IX)
	assert.Equal(t, a.TimestepS, b.TimestepS)
	assert.Equal(t, a.EMaxEV, b.EMaxEV)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader(".value not_a_key 1\n"), FormatValue)
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorContains(t, err, "第 1 行")

	_, err = Read(strings.NewReader(".value n_X three\n"), FormatValue)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = Read(strings.NewReader("not_a_key: 1\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = Read(strings.NewReader(""), Format("toml"))
	assert.ErrorIs(t, err, ErrConfig)

	in, err := Read(strings.NewReader(valueInput+".value X_shape square\n"), FormatValue)
	require.NoError(t, err)
	_, err = Constants(in)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(yamlInput), 0o644))
	in, err := ReadFile(yml)
	require.NoError(t, err)
	assert.Equal(t, "gauss", in.XShape)

	txt := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(txt, []byte(valueInput), 0o644))
	in, err = ReadFile(txt)
	require.NoError(t, err)
	assert.True(t, in.XSinSq)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, FormatYAML, FormatOf("a.YML"))
	assert.Equal(t, FormatValue, FormatOf("input"))
}

func TestCheck(t *testing.T) {
	in, err := Read(strings.NewReader(valueInput), FormatValue)
	require.NoError(t, err)
	in.EMinEV = -1
	in.Q = 0
	c, err := Constants(in)
	require.NoError(t, err)
	err = Check(c)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "E_min_eV")
	assert.ErrorContains(t, err, "(q)")

	in.EMinEV, in.Q = 75, 5
	in.TimestepS = 0
	in.TMaxS = -1e-13
	c, err = Constants(in)
	require.NoError(t, err)
	err = Check(c)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "timestep_s")
	assert.ErrorContains(t, err, "tmax_s")
}
