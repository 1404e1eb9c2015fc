package reqresp

import (
	"testing"

	"github.com/libp2p/go-libp2p/core/protocol"
	"github.com/novanet/reqmux/p2p/reqresp/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewProtocolEndpointInstallsStreamHandlerForRoleFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := mocks.NewMockHost(ctrl)
	h.EXPECT().SetStreamHandler(protocol.ID("/rq/mock"), gomock.Any()).Times(1)

	ep := newProtocolEndpoint(h, ProtocolConfig{
		Name:       "/rq/mock",
		Submission: make(chan IncomingRequest, 1),
	}, zap.NewNop(), nil, nil, nil, make(chan endpointEvent, 1))

	if ep.role != RoleFull {
		t.Fatalf("expected RoleFull, got %v", ep.role)
	}
}

func TestNewProtocolEndpointSkipsStreamHandlerForRoleOutboundOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := mocks.NewMockHost(ctrl)
	h.EXPECT().SetStreamHandler(gomock.Any(), gomock.Any()).Times(0)

	ep := newProtocolEndpoint(h, ProtocolConfig{
		Name: "/rq/mock-outbound",
	}, zap.NewNop(), nil, nil, nil, make(chan endpointEvent, 1))

	if ep.role != RoleOutboundOnly {
		t.Fatalf("expected RoleOutboundOnly, got %v", ep.role)
	}
}
