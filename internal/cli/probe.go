package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/x448/float16"

	"github.com/cantwellc/LAS/array"
)

func NewProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Write one element through chained indexing and read it back",
		Args:  cobra.NoArgs,
		RunE:  probeHandler,
	}

	cmd.Flags().String("shape", "2,3,4", "Comma separated extents (rank 1 to 4)")
	cmd.Flags().IntSlice("index", []int{1, 2, 3}, "Multi-index to write")
	cmd.Flags().Float64("value", 99, "Value to store")
	cmd.Flags().String("dtype", "f64", "Element type: f16, f32, f64, i32, i64")

	return cmd
}

func probeHandler(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("shape")
	idx, _ := cmd.Flags().GetIntSlice("index")
	value, _ := cmd.Flags().GetFloat64("value")
	dtype, _ := cmd.Flags().GetString("dtype")

	shape, err := array.ParseShape(text)
	if err != nil {
		return err
	}

	res, err := runProbe(dtype, shape, idx, value, arrayOptions(cmd))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "dtype   %s\n", dtype)
	fmt.Fprintf(w, "shape   %s\n", shape)
	fmt.Fprintf(w, "index   %v\n", idx)
	fmt.Fprintf(w, "offset  %d\n", res.Offset)
	fmt.Fprintf(w, "value   %s\n", res.Read)
	if res.Touched > 0 {
		return fmt.Errorf("probe: %d other elements changed", res.Touched)
	}
	fmt.Fprintln(w, "others  untouched")
	return nil
}

type probeResult struct {
	Rank    int
	Offset  int
	Read    string
	Touched int
}

func runProbe(dtype string, shape array.Shape, idx []int, value float64, opts []array.Option) (probeResult, error) {
	switch dtype {
	case "f16":
		return probe(shape, idx, float16.Fromfloat32(float32(value)), opts, func(v float16.Float16) string {
			return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
		})
	case "f32":
		return probe(shape, idx, float32(value), opts, func(v float32) string {
			return strconv.FormatFloat(float64(v), 'g', -1, 32)
		})
	case "f64":
		return probe(shape, idx, value, opts, func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		})
	case "i32":
		return probe(shape, idx, int32(value), opts, func(v int32) string {
			return strconv.FormatInt(int64(v), 10)
		})
	case "i64":
		return probe(shape, idx, int64(value), opts, func(v int64) string {
			return strconv.FormatInt(v, 10)
		})
	default:
		return probeResult{}, fmt.Errorf("unknown dtype %q", dtype)
	}
}

// probe allocates an array of the shape's rank, stores value at idx via
// chained Index calls and reads it back through the read-only view.
func probe[T comparable](shape array.Shape, idx []int, value T, opts []array.Option, format func(T) string) (probeResult, error) {
	res := probeResult{Rank: len(shape)}
	var (
		got  T
		data []T
	)

	switch len(shape) {
	case 1:
		a, err := array.New1[T](shape, opts...)
		if err != nil {
			return res, err
		}
		defer a.Release()
		if res.Offset, err = a.Offset(idx...); err != nil {
			return res, err
		}
		*a.Index(idx[0]) = value
		got = a.Const().Index(idx[0])
		data = a.Data()
	case 2:
		a, err := array.New2[T](shape, opts...)
		if err != nil {
			return res, err
		}
		defer a.Release()
		if res.Offset, err = a.Offset(idx...); err != nil {
			return res, err
		}
		*a.Index(idx[0]).Index(idx[1]) = value
		got = a.Const().Index(idx[0]).Index(idx[1])
		data = a.Data()
	case 3:
		a, err := array.New3[T](shape, opts...)
		if err != nil {
			return res, err
		}
		defer a.Release()
		if res.Offset, err = a.Offset(idx...); err != nil {
			return res, err
		}
		*a.Index(idx[0]).Index(idx[1]).Index(idx[2]) = value
		got = a.Const().Index(idx[0]).Index(idx[1]).Index(idx[2])
		data = a.Data()
	case 4:
		a, err := array.New4[T](shape, opts...)
		if err != nil {
			return res, err
		}
		defer a.Release()
		if res.Offset, err = a.Offset(idx...); err != nil {
			return res, err
		}
		*a.Index(idx[0]).Index(idx[1]).Index(idx[2]).Index(idx[3]) = value
		got = a.Const().Index(idx[0]).Index(idx[1]).Index(idx[2]).Index(idx[3])
		data = a.Data()
	default:
		return res, fmt.Errorf("rank %d not supported (1 to 4): %w", len(shape), array.ErrInvalidShape)
	}

	if got != value {
		return res, fmt.Errorf("probe: read %s, wrote %s", format(got), format(value))
	}
	res.Read = format(got)
	res.Touched = countTouched(data, res.Offset)
	return res, nil
}

// countTouched counts non-zero elements other than the one at off.
func countTouched[T comparable](data []T, off int) int {
	var zero T
	n := 0
	for i, v := range data {
		if i != off && v != zero {
			n++
		}
	}
	return n
}
