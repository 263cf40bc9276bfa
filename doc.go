// Package cpace provides a CPace PAKE implementation over the ristretto255 group to do secure
// mutual authentication based on passwords.
//
// CPace allows two parties sharing a common secret or password to securely agree on two independent
// 32-byte session keys with a single message in each direction. An attacker observing or tampering
// with the exchange learns nothing about the password beyond one online guess per run.
//
// The initiator calls Start and sends the resulting packet to the responder. The responder hands it
// to Respond, which returns its own packet and the session keys in one call. The initiator then
// completes the run with Finish on the responder's packet.
// NB: The registration of the secret password is not in the scope of the protocol or this implementation.
package cpace
