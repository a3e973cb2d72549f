// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// Anima is the predicate function for anima builders.
type Anima func(*sql.Selector)

// DreamAction is the predicate function for dreamaction builders.
type DreamAction func(*sql.Selector)

// DreamSession is the predicate function for dreamsession builders.
type DreamSession func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// IOConfig is the predicate function for ioconfig builders.
type IOConfig func(*sql.Selector)

// Identity is the predicate function for identity builders.
type Identity func(*sql.Selector)

// Knowledge is the predicate function for knowledge builders.
type Knowledge func(*sql.Selector)

// KnowledgeAuditLog is the predicate function for knowledgeauditlog builders.
type KnowledgeAuditLog func(*sql.Selector)

// Memory is the predicate function for memory builders.
type Memory func(*sql.Selector)

// MemoryEvent is the predicate function for memoryevent builders.
type MemoryEvent func(*sql.Selector)

// MemoryPack is the predicate function for memorypack builders.
type MemoryPack func(*sql.Selector)

// SynthesisConfig is the predicate function for synthesisconfig builders.
type SynthesisConfig func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
