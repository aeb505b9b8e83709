// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package exponential samples the one-sided truncated exponential
// distribution with a bound of one and turns it into count generators
// that favour small collections.
package exponential

import (
	"errors"
	"fmt"
	"math"

	"github.com/0xsoniclabs/propgen/gen"
)

const (
	newtonError      = 1e-9  // epsilon for Newton's convergence criteria
	newtonMaxStep    = 10000 // maximum number of iterations
	newtonInitLambda = 1.0   // initial parameter of the search
)

// CDF is the cumulative distribution function for the truncated exponential distribution with a bound of 1.
func CDF(lambda float64, x float64) float64 {
	return (math.Exp(-lambda*x) - 1.0) / (math.Exp(-lambda) - 1.0)
}

// Quantile is the inverse cumulative distribution function.
func Quantile(lambda float64, p float64) float64 {
	return math.Log(p*math.Exp(-lambda)-p+1) / -lambda
}

// Sample discretizes the quantile of u for numbers in the range between 0 and n-1.
func Sample(u float64, lambda float64, n int) int {
	y := int(float64(n) * Quantile(lambda, u))
	if y < 0 {
		return 0
	} else if y >= n {
		return n - 1
	} else {
		return y
	}
}

// mle is the Maximum Likelihood Estimation function for finding a suitable lambda.
func mle(lambda float64, mean float64) (float64, error) {
	if math.IsNaN(lambda) || math.IsNaN(mean) {
		return 0, errors.New("lambda or mean values are not a number")
	}
	t := 1 / (math.Exp(lambda) - 1)
	if math.IsNaN(t) {
		// numerical limits are reached; use the symbolic limits
		if lambda >= 1.0 {
			t = 0
		} else {
			t = 1.0
		}
	}
	return 1/lambda - t - mean, nil
}

// dMLE computes the derivative of the Maximum Likelihood Estimation function.
func dMLE(lambda float64) (float64, error) {
	if math.IsNaN(lambda) {
		return 0, errors.New("lambda is not a number")
	}
	t := math.Exp(lambda) / math.Pow(math.Exp(lambda)-1, 2)
	if math.IsNaN(t) {
		t = 1.0
	}
	return t - 1/(lambda*lambda), nil
}

// ApproximateLambda finds the lambda whose distribution has the given mean
// in (0, 0.5) using Newton's method. The MLE function is transcendental, so
// no closed form exists.
func ApproximateLambda(mean float64) (float64, error) {
	if !(mean > 0.0 && mean < 0.5) {
		return 0, fmt.Errorf("ApproximateLambda: mean (%v) is not in interval (0,0.5)", mean)
	}
	l := newtonInitLambda
	for range newtonMaxStep {
		mleValue, err := mle(l, mean)
		if err != nil {
			return 0, err
		}
		dMleValue, err := dMLE(l)
		if err != nil {
			return 0, err
		}
		l = l - mleValue/dMleValue
		if math.Abs(mleValue) < newtonError {
			return l, nil
		}
	}
	return 0.0, fmt.Errorf("ApproximateLambda: failed to converge after %v steps", newtonMaxStep)
}

func checkLambda(lambda float64) error {
	if lambda == 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return fmt.Errorf("invalid lambda (%v)", lambda)
	}
	return nil
}

// Index returns a generator of numbers in [0,n) following the discretized
// distribution. Each run consumes one uniform double.
func Index(lambda float64, n int) (gen.Gen[int], error) {
	if err := checkLambda(lambda); err != nil {
		return nil, fmt.Errorf("Index: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("Index: range (%v) must be positive", n)
	}
	return gen.Map(gen.Double(), func(u float64) int {
		return Sample(u, lambda, n)
	}), nil
}

// SizeSpec returns a size specification whose counts lie in [0,limit]
// for Gen0 and in [1,limit] for Gen1.
func SizeSpec(lambda float64, limit int) (gen.SizeSpec, error) {
	if limit < 1 {
		return nil, fmt.Errorf("SizeSpec: maximum (%v) must be positive", limit)
	}
	gen0, err := Index(lambda, limit+1)
	if err != nil {
		return nil, fmt.Errorf("SizeSpec: %w", err)
	}
	idx, err := Index(lambda, limit)
	if err != nil {
		return nil, fmt.Errorf("SizeSpec: %w", err)
	}
	gen1 := gen.Map(idx, func(i int) int { return i + 1 })
	return gen.NewSizeSpec(gen0, gen1), nil
}
