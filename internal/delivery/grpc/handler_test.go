package grpc_test

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/rs/zerolog"
	qr "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	grpchandler "github.com/Xausdorf/pix-brcode/internal/delivery/grpc"
	"github.com/Xausdorf/pix-brcode/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/pix-brcode/internal/usecase/generatebrcode"
)

const (
	payloadWithoutAmount = "00020126560014br.gov.bcb.pix0125example123456@example.com0205Teste" +
		"5204000053039865802BR5907Weslley6009Sao Paulo62070503***6304D6B4"
	payloadWithAmount = "00020126560014br.gov.bcb.pix0125example123456@example.com0205Teste" +
		"5204000053039865406100.005802BR5907Weslley6009Sao Paulo62070503***6304316C"
)

func newClient(t *testing.T, logs *bytes.Buffer) *grpchandler.Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)

	uc := generatebrcode.NewUseCase(qrgenerator.NewGenerator(256, qr.Medium))
	srv := grpc.NewServer(grpc.UnaryInterceptor(grpchandler.LoggingInterceptor(zerolog.New(logs))))
	grpchandler.RegisterBRCodeServiceServer(srv, grpchandler.NewHandler(uc))

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return grpchandler.NewClient(conn)
}

func request(t *testing.T, overrides map[string]any) *structpb.Struct {
	t.Helper()

	fields := map[string]any{
		"receiverName":        "Weslley",
		"receiverCity":        "Sao Paulo",
		"receiverCountryCode": "BR",
		"identifier":          "***",
		"description":         "Teste",
		"key":                 "example123456@example.com",
		"keyType":             "EMAIL",
	}
	for k, v := range overrides {
		fields[k] = v
	}

	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		want      string
	}{
		{name: "without amount", want: payloadWithoutAmount},
		{name: "numeric amount", overrides: map[string]any{"amount": 100}, want: payloadWithAmount},
		{name: "string amount", overrides: map[string]any{"amount": "100"}, want: payloadWithAmount},
		{name: "null amount", overrides: map[string]any{"amount": nil}, want: payloadWithoutAmount},
		{name: "unique transaction", overrides: map[string]any{"isUniqueTransaction": true}, want: payloadWithoutAmount},
	}

	var logs bytes.Buffer
	client := newClient(t, &logs)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Generate(context.Background(), request(t, tt.overrides))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetValue())
		})
	}

	assert.Contains(t, logs.String(), grpchandler.GenerateMethod)
}

func TestGenerate_InvalidArgument(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantMsg   string
	}{
		{
			name:      "validation error",
			overrides: map[string]any{"receiverCity": ""},
			wantMsg:   "Receiver city must be set",
		},
		{
			name:      "invalid key",
			overrides: map[string]any{"key": "45664564566"},
			wantMsg:   "Key must be a valid key for this key type",
		},
		{
			name:      "wrong field type",
			overrides: map[string]any{"receiverName": 42},
			wantMsg:   "receiverName must be a string",
		},
		{
			name:      "unknown field",
			overrides: map[string]any{"merchant": "x"},
			wantMsg:   `unknown field "merchant"`,
		},
		{
			name:      "bad amount",
			overrides: map[string]any{"amount": true},
			wantMsg:   "amount must be a number",
		},
		{
			name:      "several wrong field types",
			overrides: map[string]any{"receiverName": 42, "key": 7, "amount": true, "zip": "x"},
			wantMsg:   "amount must be a number",
		},
	}

	var logs bytes.Buffer
	client := newClient(t, &logs)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Generate(context.Background(), request(t, tt.overrides))
			require.Error(t, err)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
