package bitsponge_test

import (
	"fmt"

	"github.com/codahale/bitsponge"
)

func ExampleSum() {
	digest, err := bitsponge.Sum([]byte("hello"), bitsponge.Capacity256)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", digest)
	// Output: 3338be694f50c5f338814986cdf0686453a888b84f424d792af4b9202398f392
}

func ExampleSumKeccak() {
	digest, err := bitsponge.SumKeccak(nil, bitsponge.Capacity256)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", digest)
	// Output: c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470
}

func ExampleSum256() {
	fmt.Printf("%x\n", bitsponge.Sum256(nil))
	// Output: a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a
}

func ExampleSumKT128() {
	digest, err := bitsponge.SumKT128(nil, nil, 32)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", digest)
	// Output: 1ac2d450fc3b4205d19da7bfca1b37513c0803577ac7167f06fe2ce1f0ef39e5
}
