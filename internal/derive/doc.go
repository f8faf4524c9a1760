// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package derive implements the derived-state engine: pure, stateless
// transformations from raw entity lists into presentation aggregates.
//
// Every function takes the reference instant "now" explicitly instead of
// reading the ambient clock, so results are referentially transparent and
// fully testable. All functions are total over well-formed input: they assume
// pre-validated data but must not crash on edge values (e.g. a goal with
// target 0 has progress 0, never a division panic).
package derive
