package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

func GenerateRandomString() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

// RandIntn returns a uniform random value in [0, n). It panics if got a
// non-positive parameter.
func RandIntn(n int) int {
	r, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(r.Int64())
}

// Source produces uniform random integers in [0, n).
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

// NewSource returns a Source backed by crypto/rand.
func NewSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	return RandIntn(n)
}
