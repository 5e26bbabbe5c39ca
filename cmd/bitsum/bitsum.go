// Command bitsum prints the digests of files, or of standard input, computed with the bit-level implementations.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/bitsponge/digest"
)

func main() {
	log := slog.New(slog.Default().Handler())

	name := flag.String("a", "SHA3-256", "the algorithm: SHA-1, SHA-256, SHA-512, SHA3-224, SHA3-256, SHA3-384, or SHA3-512")
	flag.Parse()

	alg, err := digest.Parse(*name)
	if err != nil {
		log.Error("invalid algorithm", "err", err)
		os.Exit(2)
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	failed := false
	for _, file := range files {
		d, err := sumFile(alg, file)
		if err != nil {
			log.Error("failed to hash file", "file", file, "err", err)
			failed = true
			continue
		}
		fmt.Printf("%x  %s\n", d, file)
	}

	if failed {
		os.Exit(1)
	}
}

// sumFile returns the digest of the named file, reading standard input for "-".
func sumFile(alg digest.Algorithm, file string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	return digest.Sum(alg, data)
}
