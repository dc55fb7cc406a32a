package services

// Services defined in this package:
// - EnrollmentService: lists activities with rosters, signs students up
//   for activities and unregisters them, enforcing the business rules
//   (unknown activity, duplicate signup, capacity) before touching storage
