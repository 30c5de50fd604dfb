package raster

import (
	"math"

	"baryon/internal/mathutil"
	"baryon/vecmath"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir  vecmath.Vec3
	RimDir    vecmath.Vec3
	ViewDir   vecmath.Vec3
	HalfMain  vecmath.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient   float32
	Hemi      float32
	Direct    float32
	Rim       float32
	SpecInt   float32
	SpecPow   float64
	Exposure  float32
	SRGBGamma float64
	InvGamma  float64
}

// DefaultLightConfig returns the standard three-light studio setup.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Normalize(vecmath.NewVec3(180, 260, 140))
	rimDir := mathutil.Normalize(vecmath.NewVec3(-160, 130, -210))
	viewDir := mathutil.Normalize(vecmath.NewVec3(0, -110, -400))

	halfMain := mathutil.Normalize(lightDir.Sub(viewDir))

	return LightConfig{
		LightDir:  lightDir,
		RimDir:    rimDir,
		ViewDir:   viewDir,
		HalfMain:  halfMain,
		Ambient:   0.55,
		Hemi:      0.50,
		Direct:    1.50,
		Rim:       0.60,
		SpecInt:   0.45,
		SpecPow:   12.0,
		Exposure:  1.05,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal vecmath.Vec3) float32 {
	// Lambertian (abs for double-sided)
	ndlMain := abs32(mathutil.Dot(normal, lc.LightDir))
	ndlRim := abs32(mathutil.Dot(normal, lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-abs32(normal.Y()))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := max(mathutil.Dot(normal, lc.HalfMain), 0)
	spec := float32(math.Pow(float64(ndh), lc.SpecPow)) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Encode turns a linear color into display sRGB in 0..1: exposure and shade,
// ACES tone mapping, then gamma.
func (lc *LightConfig) Encode(linear vecmath.Vec3, shade float32) vecmath.Vec3 {
	return linear.Mul(shade * lc.Exposure).Map(ACESTonemap).Map(func(c float32) float32 {
		return float32(math.Pow(float64(c), lc.InvGamma))
	})
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float32

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = float32(math.Pow(float64(i)/255.0, 2.2))
	}
}

// Linearize decodes an sRGB color in 0..255 through the lookup table.
func Linearize(c vecmath.Vec3) vecmath.Vec3 {
	return c.Map(func(v float32) float32 { return srgbToLinear[clamp255(v)] })
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float32) float32 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
