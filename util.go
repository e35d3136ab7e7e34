package main

import (
	"fmt"
)

func SliceToMap[TIn any, KOut comparable, VOut any](in []TIn, f func(TIn) (KOut, VOut)) map[KOut]VOut {
	if in == nil {
		return nil
	}
	out := make(map[KOut]VOut)
	for _, vin := range in {
		k, vout := f(vin)
		out[k] = vout
	}
	return out
}

func SliceToSlice[TIn any, TOut any](in []TIn, f func(TIn) TOut) []TOut {
	if in == nil {
		return nil
	}
	out := make([]TOut, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func SliceToMapErr[TIn any, KOut comparable, VOut any](in []TIn, f func(int, TIn) (KOut, VOut, error)) (map[KOut]VOut, error) {
	if in == nil {
		return nil, fmt.Errorf("called SliceToMapErr on nil slice")
	}
	out := make(map[KOut]VOut)
	for i, vin := range in {
		k, vout, err := f(i, vin)
		if err != nil {
			return nil, err
		}
		out[k] = vout
	}
	return out, nil
}

func FilterSlice[TIn any](in []TIn, f func(v TIn) bool) []TIn {
	if in == nil {
		return nil
	}
	out := make([]TIn, 0, len(in))
	for _, v := range in {
		if f(v) {
			out = append(out, v)
		}
	}
	return out
}

func Find[TIn any](in []TIn, f func(v TIn) bool) int {
	for i, v := range in {
		if f(v) {
			return i
		}
	}
	return -1
}
