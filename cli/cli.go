// Package cli evaluates vmath commands given as command-line arguments.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/meghashyamc/vmath/config"
	"github.com/meghashyamc/vmath/geometry"
	"github.com/meghashyamc/vmath/logger"
)

// ErrUsage is returned for unknown commands and wrong argument counts.
var ErrUsage = errors.New("usage")

// Settings is the part of the configuration commands depend on.
type Settings interface {
	GetEpsilon() float32
	GetOutputFormat() string
}

type command struct {
	usage string
	nargs int
	run   func(r *runner, args []string) (any, error)
}

type runner struct {
	settings Settings
}

var commands = map[string]command{
	"vec2 mag": {"X Y", 2, func(r *runner, args []string) (any, error) {
		v, err := parseVec2(args)
		if err != nil {
			return nil, err
		}
		return v.Magnitude(), nil
	}},
	"vec2 norm": {"X Y", 2, func(r *runner, args []string) (any, error) {
		v, err := parseVec2(args)
		if err != nil {
			return nil, err
		}
		return v.Normalized(), nil
	}},
	"vec2 add":     {"X1 Y1 X2 Y2", 4, vec2Pair(func(a, b geometry.Vec2) any { return a.Add(b) })},
	"vec2 sub":     {"X1 Y1 X2 Y2", 4, vec2Pair(func(a, b geometry.Vec2) any { return a.Subtract(b) })},
	"vec2 dot":     {"X1 Y1 X2 Y2", 4, vec2Pair(func(a, b geometry.Vec2) any { return a.Dot(b) })},
	"vec2 angle":   {"X1 Y1 X2 Y2", 4, vec2Pair(func(a, b geometry.Vec2) any { return a.AngleTo(b) })},
	"vec2 reflect": {"X Y NX NY", 4, vec2Pair(func(v, n geometry.Vec2) any { return v.Reflect(n) })},
	"vec2 dist": {"PX PY SX SY EX EY", 6, func(r *runner, args []string) (any, error) {
		point, err := parseVec2(args[0:2])
		if err != nil {
			return nil, err
		}
		start, err := parseVec2(args[2:4])
		if err != nil {
			return nil, err
		}
		end, err := parseVec2(args[4:6])
		if err != nil {
			return nil, err
		}
		return geometry.DistanceFromPointToLine(point, start, end), nil
	}},
	"vec2 scale": {"X Y S", 3, func(r *runner, args []string) (any, error) {
		v, err := parseVec2(args[:2])
		if err != nil {
			return nil, err
		}
		s, err := parseScalar(args[2])
		if err != nil {
			return nil, err
		}
		return v.Scale(s), nil
	}},
	"mat3 identity": {"", 0, func(r *runner, args []string) (any, error) {
		return geometry.Identity(), nil
	}},
	"mat3 get": {"ROW COL A00..A22", 11, func(r *runner, args []string) (any, error) {
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid row %q: %w", args[0], err)
		}
		col, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid column %q: %w", args[1], err)
		}
		m, err := parseMat3(args[2:])
		if err != nil {
			return nil, err
		}
		return m.Get(row, col)
	}},
	"mat3 transpose": {"A00..A22", 9, func(r *runner, args []string) (any, error) {
		m, err := parseMat3(args)
		if err != nil {
			return nil, err
		}
		return m.Transpose(), nil
	}},
	"mat3 mul": {"A00..A22 B00..B22", 18, mat3Pair(func(r *runner, a, b geometry.Mat3) any { return a.Multiply(b) })},
	"mat3 eq": {"A00..A22 B00..B22", 18, mat3Pair(func(r *runner, a, b geometry.Mat3) any {
		return a.ApproxEqual(b, r.settings.GetEpsilon())
	})},
}

// Run evaluates the command in args and writes its result to out.
func Run(settings Settings, log logger.Logger, args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: vmath <vec2|mat3> <op> [args...]\n%s", ErrUsage, Usage())
	}

	name := args[0] + " " + args[1]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q\n%s", ErrUsage, name, Usage())
	}
	operands := args[2:]
	if len(operands) != cmd.nargs {
		return fmt.Errorf("%w: %s %s (got %d arguments, want %d)", ErrUsage, name, cmd.usage, len(operands), cmd.nargs)
	}

	r := &runner{settings: settings}
	result, err := cmd.run(r, operands)
	if err != nil {
		log.Debug("command failed", "command", name, "err", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("command evaluated", "command", name, "args", operands, "result", fmt.Sprint(result))

	return write(out, settings.GetOutputFormat(), result)
}

// Usage lists every command with its arguments.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("commands:\n")
	for _, name := range names {
		sb.WriteString("  " + name)
		if usage := commands[name].usage; usage != "" {
			sb.WriteString(" " + usage)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func write(out io.Writer, format string, result any) error {
	if format != config.OutputJSON {
		_, err := fmt.Fprintln(out, result)
		return err
	}

	data, err := json.Marshal(map[string]any{"result": jsonValue(result)})
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// jsonValue flattens vectors and matrices into arrays. Non-finite scalars
// have no JSON number form and are written as strings: "+Inf", "-Inf", "NaN".
func jsonValue(result any) any {
	switch v := result.(type) {
	case float32:
		return jsonScalar(v)
	case geometry.Vec2:
		return []any{jsonScalar(v.X()), jsonScalar(v.Y())}
	case geometry.Mat3:
		elements := v.F32()
		values := make([]any, len(elements))
		for i, e := range elements {
			values[i] = jsonScalar(e)
		}
		return values
	}
	return result
}

func jsonScalar(f float32) any {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return f
}

func vec2Pair(op func(a, b geometry.Vec2) any) func(r *runner, args []string) (any, error) {
	return func(r *runner, args []string) (any, error) {
		a, err := parseVec2(args[:2])
		if err != nil {
			return nil, err
		}
		b, err := parseVec2(args[2:])
		if err != nil {
			return nil, err
		}
		return op(a, b), nil
	}
}

func mat3Pair(op func(r *runner, a, b geometry.Mat3) any) func(r *runner, args []string) (any, error) {
	return func(r *runner, args []string) (any, error) {
		a, err := parseMat3(args[:9])
		if err != nil {
			return nil, err
		}
		b, err := parseMat3(args[9:])
		if err != nil {
			return nil, err
		}
		return op(r, a, b), nil
	}
}

func parseScalar(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return float32(f), nil
}

func parseScalars(args []string) ([]float32, error) {
	values := make([]float32, len(args))
	for i, arg := range args {
		f, err := parseScalar(arg)
		if err != nil {
			return nil, err
		}
		values[i] = f
	}
	return values, nil
}

func parseVec2(args []string) (geometry.Vec2, error) {
	values, err := parseScalars(args)
	if err != nil {
		return geometry.Vec2{}, err
	}
	return geometry.NewVec2(values[0], values[1])
}

func parseMat3(args []string) (geometry.Mat3, error) {
	values, err := parseScalars(args)
	if err != nil {
		return geometry.Mat3{}, err
	}
	return geometry.NewMat3FromSlice(values)
}
