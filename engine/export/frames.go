package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	gomath "math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/zoetrope"
)

// DefaultFileName is the name the CLI writes exports to when none is given.
const DefaultFileName = "zoetrope_frames.json"

const minExportScale = 0.01

// FrameDescriptor is the exported, fabrication-oriented view of one frame.
type FrameDescriptor struct {
	Angle        float64 `json:"angle"`
	Scale        float64 `json:"scale"`
	Radius       float64 `json:"radius"`
	DeformFactor float64 `json:"deform_factor"`
	Layer        int     `json:"layer"`
	BendFactor   float64 `json:"bend_factor"`
	NoiseScale   float64 `json:"noise_scale"`
	MorphT       float64 `json:"morph_t"`
	UnitScale    float64 `json:"unit_scale"`
	Distribution string  `json:"distribution"`
}

// Degree conversions are evaluated at run time in float64 so they round the
// same way as a browser's Math.PI / 180.
var (
	pi      = gomath.Pi
	deg2rad = pi / 180
	rad2deg = 180 / pi
)

// widen returns the float64 closest to the shortest decimal form of v, so a
// configured 0.1 exports as 0.1 and not 0.10000000149.
func widen(v float32) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	if err != nil {
		return float64(v)
	}
	return f
}

// toFixed rounds v to places decimals using the exact binary value of v,
// with ties going away from zero. 1.0005 stays 1 because its double is just
// below the tie; 2.8125 becomes 2.813.
func toFixed(v float64, places int) float64 {
	if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return v
	}
	neg := v < 0
	x := new(big.Float).SetPrec(256).SetFloat64(gomath.Abs(v))
	scale := new(big.Float).SetPrec(256).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil))
	x.Mul(x, scale)
	x.Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)

	digits := n.String()
	if places > 0 {
		if len(digits) <= places {
			digits = strings.Repeat("0", places+1-len(digits)) + digits
		}
		digits = digits[:len(digits)-places] + "." + digits[len(digits)-places:]
	}
	r, err := strconv.ParseFloat(digits, 64)
	if err != nil || r == 0 {
		// no "-0" in the output
		return 0
	}
	if neg {
		return -r
	}
	return r
}

// frameAngle is the exported angle of frame i in degrees.
func frameAngle(cfg zoetrope.Config, i int) float64 {
	return (widen(cfg.StartAngle)*deg2rad + pi*2*(float64(i)/float64(cfg.FrameCount()))) * rad2deg
}

// frameScale is the exported scale of frame i before the floor.
func frameScale(cfg zoetrope.Config, i int) float64 {
	return widen(cfg.BaseScale) + widen(cfg.ScaleVar)*gomath.Sin(float64(i)*0.55)
}

// FrameDescriptors describes every frame of cfg. Angles always follow the
// evenly spaced formula, whatever the distribution.
func FrameDescriptors(cfg zoetrope.Config) []FrameDescriptor {
	cfg = cfg.Normalize()
	n := cfg.FrameCount()
	out := make([]FrameDescriptor, n)
	for i := 0; i < n; i++ {
		sc := toFixed(frameScale(cfg, i), 3)
		out[i] = FrameDescriptor{
			Angle:        toFixed(frameAngle(cfg, i), 3),
			Scale:        gomath.Max(minExportScale, toFixed(sc, 3)),
			Radius:       toFixed(widen(cfg.Radius), 4),
			DeformFactor: toFixed(widen(cfg.Deform), 3),
			Layer:        zoetrope.FrameLayer(cfg, i),
			BendFactor:   toFixed(widen(cfg.Bend), 3),
			NoiseScale:   toFixed(widen(cfg.NoiseScale), 3),
			MorphT:       toFixed(widen(cfg.Morph), 3),
			UnitScale:    1.0,
			Distribution: cfg.Distribution.String(),
		}
	}
	return out
}

// Marshal renders the frames as a two-space indented JSON array.
func Marshal(cfg zoetrope.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func Write(w io.Writer, cfg zoetrope.Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FrameDescriptors(cfg)); err != nil {
		return fmt.Errorf("failed to encode frames: %w", err)
	}
	return nil
}

// WriteFile exports cfg to path, or to DefaultFileName when path is empty.
func WriteFile(path string, cfg zoetrope.Config) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		core.LogError("failed to write %s: %s", path, err)
		return "", err
	}
	core.LogInfo("exported %d frames to %s", cfg.Normalize().FrameCount(), path)
	return path, nil
}
