// Command hash-generator prints bcrypt digests for seeding users by hand.
//
// Usage:
//
//	hash-generator [-cost 10] password [password...]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phrazzld/taskdeck-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password [password...]")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(*cost)
	failed := false
	for _, password := range flag.Args() {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating hash: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("Hash (cost %d): %s\n", hasher.Cost(), hash)
	}
	if failed {
		os.Exit(1)
	}
}
