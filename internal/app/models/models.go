package models

// Models defined in this package:
// - Activity: an extracurricular offering with an optional capacity
// - Student: a person identified by email, created lazily on first signup
// - Enrollment: the join record between a student and an activity
