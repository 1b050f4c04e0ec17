// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

// Package api is the HTTP surface of Gatekeeper. It validates request bodies
// against JSON Schemas reflected from the request types, calls the auth
// services and maps their errors to problem-details responses.
//
// Routes:
//
//	POST /auth/register   name, email, password, confirmPassword
//	POST /auth/login      email, password
//	POST /auth/refresh    refreshToken
//	GET  /users/me        bearer token with the Member role
//	GET  /users/{id}      bearer token with the Admin role
package api
