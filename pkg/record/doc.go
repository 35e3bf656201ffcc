// Package record defines the object contract the scaffolder reads field
// metadata from, and an in-memory implementation backed by declarative
// models and fixture files.
package record
