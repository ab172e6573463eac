package impl

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"sellerhub/internal/util"
)

const (
	sellerIDPrefixLength = 10
	sellerIDAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// datedKey builds <prefix>/YYYY/M/D/<owner>-<filename>.
func datedKey(prefix string, at time.Time, owner, filename string) string {
	return fmt.Sprintf("%s/%d/%d/%d/%s-%s", prefix, at.Year(), int(at.Month()), at.Day(), owner, util.CleanFilename(filename))
}

// randomSellerPrefix returns n uniformly random characters of [A-Z0-9].
func randomSellerPrefix(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)

	limit := big.NewInt(int64(len(sellerIDAlphabet)))
	for range n {
		i, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(sellerIDAlphabet[i.Int64()])
	}

	return sb.String(), nil
}
