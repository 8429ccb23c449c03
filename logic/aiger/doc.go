// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger implements the binary aiger format for combinational
// and-inverter graphs.
//
// Written graphs are backed by *logic.C; XOR gates are expanded into
// and gates before serialization.
package aiger
