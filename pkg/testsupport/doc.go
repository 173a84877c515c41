// Package testsupport loads editor fixtures and golden files for tests.
package testsupport
