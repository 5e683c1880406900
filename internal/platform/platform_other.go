//go:build !amd64 && !arm64

package platform

func cas128Available() bool {
	return false
}
