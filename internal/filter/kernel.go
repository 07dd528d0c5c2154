package filter

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// GaussianKernel generates a 1D Gaussian kernel of length 2*radius+1.
// The kernel is normalized so all values sum to 1.0.
//
// Sigma is radius/3, so the kernel spans three standard deviations on
// each side. Radius 0 returns the identity kernel [1.0]. GaussianKernel
// panics on a negative radius.
func GaussianKernel(radius int) []float64 {
	if radius < 0 {
		panic(fmt.Sprintf("filter: negative kernel radius %d", radius))
	}
	if radius == 0 {
		return []float64{1.0}
	}

	size := 2*radius + 1
	sigma := float64(radius) / 3.0
	twoSigmaSq := 2 * sigma * sigma

	kernel := make([]float64, size)
	for i := range size {
		x := float64(i - radius)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
	}

	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}

// kernelCache caches computed Gaussian kernels by radius.
// Cached slices are shared and must be treated as read-only.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float64
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float64),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(radius int) []float64 {
	c.mu.RLock()
	if kernel, ok := c.cache[radius]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(radius)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop half; which half does not matter.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[radius] = kernel
	c.mu.Unlock()

	return kernel
}

// len returns the number of cached kernels.
func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianKernel returns a shared Gaussian kernel for radius.
// The returned slice must not be modified.
func CachedGaussianKernel(radius int) []float64 {
	return defaultKernelCache.get(radius)
}
