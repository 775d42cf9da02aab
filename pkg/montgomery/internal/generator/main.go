package main

import (
	"fmt"
	"math/big"
	"math/bits"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-montgomery")

	specs := []modulusSpec{
		{Name: "gf251", Modulus: 251},
		{Name: "gf8209", Modulus: 8209},
		{Name: "zkdilithium", Modulus: 7340033},
		{Name: "mldsa", Modulus: 8380417},
		{Name: "babybear", Modulus: 2013265921},
		{Name: "koalabear", Modulus: 2130706433},
		{Name: "mersenne31", Modulus: 1<<31 - 1},
	}

	var table tableConfig

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for modulus \"%s\"", spec.Name)

		table.Moduli = append(table.Moduli, *cfg)
	}

	assertNoError(bgen.Generate(table, "montgomery", "templates",
		bavard.Entry{
			File:      "../../known.go",
			Templates: []string{"known.go.tmpl"},
		},
	), "generating known table")

	// run gofmt on the generated package
	runCmd("gofmt", "-w", "../../")

	// run goimports on the generated package
	runCmd("goimports", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type modulusSpec struct {
	Name    string
	Modulus uint32
}

type modulusConfig struct {
	modulusSpec
	RBits uint
	RMask uint32
	RInv  uint32
	NInv  uint32
	R2    uint32
}

type tableConfig struct {
	Moduli []modulusConfig
}

func (s modulusSpec) config() (*modulusConfig, error) {
	if s.Modulus < 3 || s.Modulus%2 == 0 || s.Modulus > 1<<31-1 {
		return nil, fmt.Errorf("modulus must be odd and in [3, 2³¹−1]")
	}

	cfg := modulusConfig{
		modulusSpec: s,
		RBits:       uint(bits.Len32(s.Modulus)),
	}
	cfg.RMask = uint32(1)<<cfg.RBits - 1

	m := big.NewInt(int64(s.Modulus))
	r := big.NewInt(int64(1) << cfg.RBits)

	var x big.Int

	if x.ModInverse(r, m) == nil {
		return nil, fmt.Errorf("no inverse of 2^%d", cfg.RBits)
	}

	cfg.RInv = uint32(x.Uint64())

	// (R·RInv − 1) / n, an exact division
	x.Mul(&x, r).
		Sub(&x, big.NewInt(1)).
		Div(&x, m)

	cfg.NInv = uint32(x.Uint64())

	x.Mod(r, m).
		Mul(&x, &x).
		Mod(&x, m)

	cfg.R2 = uint32(x.Uint64())

	return &cfg, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
