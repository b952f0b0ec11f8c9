package cli

import (
	"errors"

	"github.com/katalvlaran/trianglepath/internal/config"
	"github.com/katalvlaran/trianglepath/parse"
	"github.com/katalvlaran/trianglepath/solver"
	"github.com/katalvlaran/trianglepath/triangle"
)

// Exit codes, following sysexits.h.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 64 // EX_USAGE
	ExitDataErr  = 65 // EX_DATAERR
	ExitSoftware = 70 // EX_SOFTWARE
	ExitIOErr    = 74 // EX_IOERR
)

var (
	errUsage  = errors.New("usage error")
	errInput  = errors.New("cannot open input")
	errOutput = errors.New("cannot write output")
)

// classify maps err to an exit code and the headline printed above it.
func classify(err error) (int, string) {
	var (
		se *triangle.ShapeError
		ve *triangle.ValueError
	)
	switch {
	case errors.Is(err, errUsage), errors.Is(err, config.ErrInvalid):
		return ExitUsage, "The command line or configuration is invalid:"
	case errors.As(err, &se):
		return ExitDataErr, "There is a line that is too short or too long in the input data:"
	case errors.As(err, &ve):
		return ExitDataErr, "There is an invalid value in the input data:"
	case errors.Is(err, triangle.ErrInvalidInput):
		return ExitDataErr, "The input data does not form a triangle:"
	case errors.Is(err, solver.ErrOverflow):
		return ExitSoftware, "The sum of numbers along part of some path through the triangle is out of range:"
	case errors.Is(err, parse.ErrRead), errors.Is(err, errInput), errors.Is(err, errOutput):
		return ExitIOErr, "There was an I/O error:"
	default:
		return ExitFailure, "Error:"
	}
}
