// Package timezone pins every wall-clock decision to the application timezone.
//
// The zone comes from APP_TIMEZONE (an IANA name such as "UTC" or "Europe/Moscow")
// and is loaded once when the package is imported. Day boundaries used by the
// booking summaries are computed with StartOfDay, so "today" always means today
// in that zone rather than in the zone of the host.
//
// Code that needs the current time should depend on a Clock, which lets tests
// freeze time with Fixed.
package timezone
