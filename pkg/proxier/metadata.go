package proxier

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

const (
	clientIDKey     = "client_id"
	reconnectingKey = "reconnecting"
)

// clientID extracts the caller's client id from incoming metadata, or "".
func clientID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vs := md.Get(clientIDKey); len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// reconnecting extracts the Datapath reconnect flag from incoming metadata.
// Clients send a stringified boolean; the parse is tolerant of casing.
func reconnecting(ctx context.Context) bool {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return false
	}
	if vs := md.Get(reconnectingKey); len(vs) > 0 {
		return strings.EqualFold(vs[0], "true") || vs[0] == "1"
	}
	return false
}

// outgoingCtx turns the caller's incoming metadata into outgoing metadata for
// the forwarded call, so the backend sees what the proxier saw.
func outgoingCtx(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.MD{}
	}
	return metadata.NewOutgoingContext(ctx, md.Copy())
}

// datapathOutgoingCtx is outgoingCtx with the client id and reconnect flag
// set explicitly; the forwarded Datapath stream always declares both. The
// backend compares the reconnect flag against the capitalized stringified
// booleans exactly, so "true" would not reattach.
func datapathOutgoingCtx(ctx context.Context, id string, recon bool) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		md = md.Copy()
	} else {
		md = metadata.MD{}
	}
	reconValue := "False"
	if recon {
		reconValue = "True"
	}
	md.Set(clientIDKey, id)
	md.Set(reconnectingKey, reconValue)
	return metadata.NewOutgoingContext(ctx, md)
}
