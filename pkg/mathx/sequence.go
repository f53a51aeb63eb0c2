package mathx

import "errors"

// ErrEmptyInput is returned by aggregates that are undefined on an empty sequence.
var ErrEmptyInput = errors.New("empty input sequence")

// Integer is the element constraint for the sequence aggregates.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Max returns the largest value in nums with a single linear scan. The first
// element is the initial candidate and only strictly greater elements replace
// it, so ties resolve to the earliest occurrence.
func Max[T Integer](nums []T) (T, error) {
	var zero T
	if len(nums) == 0 {
		return zero, ErrEmptyInput
	}
	maxVal := nums[0]
	for _, v := range nums[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal, nil
}

// MaxIndex returns the index of the first occurrence of the maximum in nums.
func MaxIndex[T Integer](nums []T) (int, error) {
	if len(nums) == 0 {
		return -1, ErrEmptyInput
	}
	maxIdx := 0
	for i, v := range nums[1:] {
		if v > nums[maxIdx] {
			maxIdx = i + 1
		}
	}
	return maxIdx, nil
}

// Min returns the smallest value in nums. Ties resolve to the earliest occurrence.
func Min[T Integer](nums []T) (T, error) {
	var zero T
	if len(nums) == 0 {
		return zero, ErrEmptyInput
	}
	minVal := nums[0]
	for _, v := range nums[1:] {
		if v < minVal {
			minVal = v
		}
	}
	return minVal, nil
}

// Sum returns the sum of nums. The sum of an empty sequence is 0.
// Overflow wraps, matching Go integer addition.
func Sum[T Integer](nums []T) T {
	var total T
	for _, v := range nums {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of nums as a float64.
func Mean[T Integer](nums []T) (float64, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}
	var total float64
	for _, v := range nums {
		total += float64(v)
	}
	return total / float64(len(nums)), nil
}
