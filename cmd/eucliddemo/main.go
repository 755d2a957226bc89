// Command eucliddemo evaluates integer expressions by compass-and-
// straightedge construction and prints the construction script.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogeom/euclid"
	"github.com/gogeom/euclid/trace"
	"github.com/gogeom/euclid/trace/backends/script"
)

func main() {
	var (
		a       = flag.Int64("a", 17, "left operand")
		b       = flag.Int64("b", 25, "right operand")
		op      = flag.String("op", "add", "operation: add, sub, mul, div, mod, and, or, xor, gcd, pow")
		verbose = flag.Bool("v", false, "print the construction script")
	)
	flag.Parse()

	rec := trace.NewRecorder()
	pl := euclid.NewPlane(euclid.WithTracer(rec))

	x, err := pl.Int(*a)
	if err != nil {
		log.Fatalf("Failed to construct %d: %v", *a, err)
	}
	y, err := pl.Int(*b)
	if err != nil {
		log.Fatalf("Failed to construct %d: %v", *b, err)
	}

	var res euclid.Num
	switch *op {
	case "add":
		res, err = x.Add(y)
	case "sub":
		res, err = x.Sub(y)
	case "mul":
		res, err = x.Mul(y)
	case "div":
		res, err = x.Div(y)
	case "mod":
		res, err = x.Mod(y)
	case "and":
		res, err = x.And(y)
	case "or":
		res, err = x.Or(y)
	case "xor":
		res, err = x.Xor(y)
	case "gcd":
		res, err = euclid.GCD(x, y)
	case "pow":
		res, err = x.Pow(y)
	default:
		log.Fatalf("Unknown operation %q", *op)
	}
	if err != nil {
		log.Fatalf("Failed to compute %d %s %d: %v", *a, *op, *b, err)
	}

	val, err := res.Int64()
	if err != nil {
		log.Fatalf("Result is not an integer: %v", err)
	}

	recording := rec.Finish()
	fmt.Printf("%d %s %d = %d\n", *a, *op, *b, val)
	fmt.Printf("constructed %d figures in %d steps\n",
		recording.Resources().PointCount()+
			recording.Resources().LineCount()+
			recording.Resources().CircleCount(),
		recording.Len())

	if *verbose {
		backend := script.New()
		if err := recording.Playback(backend); err != nil {
			log.Fatalf("Failed to replay: %v", err)
		}
		if _, err := backend.WriteTo(os.Stdout); err != nil {
			log.Fatalf("Failed to write script: %v", err)
		}
	}
}
