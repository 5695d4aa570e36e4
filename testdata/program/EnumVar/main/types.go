package main

type Color int

const (
	Red Color = iota
	Green
	Blue
)
