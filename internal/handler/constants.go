// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteSuffixEdit is the suffix for edit routes.
	RouteSuffixEdit = "/edit"
	// RouteSuffixMove is the suffix for reorder routes.
	RouteSuffixMove = "/move"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/delete"
	// RouteSuffixStatus is the suffix for status update routes.
	RouteSuffixStatus = "/status"
	// RouteSuffixPayment is the suffix for payment status routes.
	RouteSuffixPayment = "/payment"
	// RouteSuffixCancel is the suffix for cancel routes.
	RouteSuffixCancel = "/cancel"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteRegister is the registration route.
	RouteRegister = "/register"
	// RouteForgotPassword is the password recovery route.
	RouteForgotPassword = "/forgot-password"
	// RouteResetPassword is the password reset route.
	RouteResetPassword = "/reset-password"

	// RouteCostumes is the public costumes route.
	RouteCostumes = "/costumes"
	// RoutePackages is the public packages route.
	RoutePackages = "/packages"
	// RouteAbout is the about page route.
	RouteAbout = "/about"
	// RouteContact is the contact page route.
	RouteContact = "/contact"
	// RouteBookings is the bookings route.
	RouteBookings = "/bookings"
	// RouteEvents is the user events route.
	RouteEvents = "/events"
	// RouteProfile is the profile route.
	RouteProfile = "/profile"
	// RouteDashboard is the user dashboard route.
	RouteDashboard = "/dashboard"

	// RouteAdmin is the admin dashboard route.
	RouteAdmin = "/admin"
	// RouteAdminCostumes is the costume admin route.
	RouteAdminCostumes = RouteAdmin + RouteCostumes
	// RouteAdminPackages is the package admin route.
	RouteAdminPackages = RouteAdmin + RoutePackages
	// RouteAdminBookings is the booking admin route.
	RouteAdminBookings = RouteAdmin + RouteBookings
	// RouteAdminContacts is the contact admin route.
	RouteAdminContacts = RouteAdmin + "/contacts"
	// RouteAdminEvents is the event log admin route.
	RouteAdminEvents = RouteAdmin + RouteEvents
)
