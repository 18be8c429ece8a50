// Package project sequences the create and update flows.
//
// Create validates its inputs and checks the environment before it touches
// the filesystem. It then stages the template, customizes the copied files
// and links the result with the SDK tool. Update re-stages the framework,
// scripts and build rules over an existing tree and links it again. Both
// flows stop at the first failure. Files already written are left in place.
package project
