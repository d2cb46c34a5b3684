package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/locallibrary/catalog/pkg/auth"
	"github.com/robinjoseph08/golib/logger"
)

func main() {
	log := logger.New()

	var opts struct {
		Hash    string        `long:"hash" description:"Print the bcrypt hash of this key, for api_key_hash"`
		Secret  string        `long:"secret" description:"Sign a token with this secret, for jwt_secret"`
		Subject string        `long:"subject" default:"librarian" description:"Subject claim of the signed token"`
		TTL     time.Duration `long:"ttl" default:"720h" description:"Token lifetime; 0 for no expiry"`
	}

	if _, err := flags.Parse(&opts); err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	switch {
	case opts.Hash != "":
		hash, err := auth.HashKey(opts.Hash)
		if err != nil {
			log.Err(err).Fatal("hash error")
		}
		fmt.Println(hash)
	case opts.Secret != "":
		token, err := auth.IssueToken(opts.Secret, opts.Subject, opts.TTL)
		if err != nil {
			log.Err(err).Fatal("sign error")
		}
		fmt.Println(token)
	default:
		fmt.Println("go run ./cmd/scripts/credentials --hash <key> | --secret <secret> [--subject name] [--ttl 720h]")
		os.Exit(1)
	}
}
