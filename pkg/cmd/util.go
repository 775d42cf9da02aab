package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/go-montgomery/pkg/montgomery"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected uint64 flag, or exit if an error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Resolve a modulus argument into a context for it, exiting on a modulus the
// engine rejects.
func resolveContext(arg string) *montgomery.Context {
	ctx, err := montgomery.New(resolveModulus(arg))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return ctx
}

// Resolve a modulus argument, which is either the name of a well-known
// modulus or a number.
func resolveModulus(arg string) uint32 {
	if known, ok := montgomery.LookupModulus(arg); ok {
		return known.Params.Modulus
	}

	return parseOperand(arg)
}

// Parse a numeric argument.  Decimal, hex and octal all work, courtesy of the
// base-0 parse.
func parseOperand(arg string) uint32 {
	v, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return uint32(v)
}
