package main

type Speed int
