/*
Package gfio provides io functionality, including to/from stdin/stdout,
and helpful error messages when used in combination with bad filepaths
from commandline options
*/
package gfio

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/pflag"
)

func flagString(flag pflag.Flag) string {
	switch len(flag.Shorthand) {
	case 0:
		return "--" + flag.Name
	default:
		return "-" + flag.Shorthand + " / --" + flag.Name
	}
}

// parsePathErr names the offending command line option in a path error
func parsePathErr(err error, flag pflag.Flag) error {
	var x *fs.PathError
	if errors.As(err, &x) {
		return errors.New(x.Op + " " + flagString(flag) + " " + x.Path + ": " + x.Err.Error())
	}
	return err
}

// OpenIn opens the file named by flag for reading, or returns os.Stdin if its
// value is "stdin"
func OpenIn(flag pflag.Flag) (*os.File, error) {
	inFile := flag.Value.String()

	if inFile == "stdin" {
		return os.Stdin, nil
	}

	f, err := os.Open(inFile)
	if err != nil {
		return f, parsePathErr(err, flag)
	}

	return f, nil
}

// OpenOut creates the file named by flag, or returns os.Stdout if its value is
// "stdout"
func OpenOut(flag pflag.Flag) (*os.File, error) {
	outFile := flag.Value.String()

	if outFile == "stdout" {
		return os.Stdout, nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return f, parsePathErr(err, flag)
	}

	return f, nil
}

// Given reports whether an optional output flag has a destination
func Given(flag pflag.Flag) bool {
	return flag.Value.String() != ""
}

// IsStd reports whether flag points at stdin or stdout rather than a file
func IsStd(flag pflag.Flag) bool {
	v := flag.Value.String()
	return v == "stdin" || v == "stdout"
}
