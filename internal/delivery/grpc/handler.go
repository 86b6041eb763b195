package grpc

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Xausdorf/pix-brcode/internal/domain/brcode"
	"github.com/Xausdorf/pix-brcode/internal/usecase/generatebrcode"
)

type Handler struct {
	generateUC *generatebrcode.UseCase
}

func NewHandler(generateUC *generatebrcode.UseCase) *Handler {
	return &Handler{generateUC: generateUC}
}

func (h *Handler) Generate(_ context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	r, err := requestFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := h.generateUC.Execute(r)
	if err != nil {
		var vErr *brcode.ValidationError
		if errors.As(err, &vErr) {
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		return nil, status.Errorf(codes.Internal, "generate failed: %v", err)
	}

	return wrapperspb.String(resp.Payload), nil
}

func requestFromStruct(s *structpb.Struct) (generatebrcode.Request, error) {
	var req generatebrcode.Request

	fields := s.GetFields()
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		v := fields[name]
		var err error
		switch name {
		case "receiverName":
			req.ReceiverName, err = stringField(name, v)
		case "receiverCity":
			req.ReceiverCity, err = stringField(name, v)
		case "receiverCountryCode":
			req.ReceiverCountryCode, err = stringField(name, v)
		case "identifier":
			req.Identifier, err = stringField(name, v)
		case "key":
			req.Key, err = stringField(name, v)
		case "keyType":
			req.KeyType, err = stringField(name, v)
		case "description":
			req.Description, err = stringField(name, v)
		case "amount":
			req.Amount, err = amountField(v)
		case "isUniqueTransaction":
			b, ok := v.GetKind().(*structpb.Value_BoolValue)
			if !ok {
				err = fmt.Errorf("%s must be a boolean", name)
			} else {
				req.IsUniqueTransaction = b.BoolValue
			}
		default:
			err = fmt.Errorf("unknown field %q", name)
		}
		if err != nil {
			return generatebrcode.Request{}, err
		}
	}

	return req, nil
}

func stringField(name string, v *structpb.Value) (string, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", fmt.Errorf("%s must be a string", name)
	}
}

func amountField(v *structpb.Value) (*decimal.Decimal, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		d := decimal.NewFromFloat(k.NumberValue)
		return &d, nil
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(k.StringValue)
		if err != nil {
			return nil, fmt.Errorf("amount must be a decimal number: %w", err)
		}
		return &d, nil
	case *structpb.Value_NullValue:
		return nil, nil
	default:
		return nil, errors.New("amount must be a number")
	}
}
