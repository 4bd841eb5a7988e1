// Package filex implements the file helpers used by the tiny toolchain.
//
// Package: filex
// Title: File Operations
// Description: Existence checks, atomic writes through a temp file and
//              rename, parent directory creation and path expansion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers used by the toolchain
package filex
