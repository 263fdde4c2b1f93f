// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"errors"
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"

	"github.com/Redd-ID/blockstack-core/chain"
)

// Name is the JSON-RPC namespace the query service registers under.
const Name = "bns"

var ErrNotFound = errors.New("record not found")

// Service exposes the engine's read API over JSON-RPC. All replies reflect
// committed state only.
type Service struct {
	eng *Engine
}

// NewHandler returns an http.Handler serving the query service.
func NewHandler(eng *Engine) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&Service{eng: eng}, Name); err != nil {
		return nil, err
	}
	return server, nil
}

type PingReply struct {
	Success bool `json:"success"`
}

func (svc *Service) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	reply.Success = true
	return nil
}

type CurrentBlockReply struct {
	Height        uint64 `json:"height"`
	ConsensusHash string `json:"consensusHash"`
}

func (svc *Service) CurrentBlock(_ *http.Request, _ *struct{}, reply *CurrentBlockReply) error {
	reply.Height = svc.eng.CurrentBlockHeight()
	reply.ConsensusHash = svc.eng.CurrentConsensusHash()
	return nil
}

type ConsensusHashAtArgs struct {
	Height uint64 `json:"height"`
}

type ConsensusHashAtReply struct {
	ConsensusHash string `json:"consensusHash"`
}

func (svc *Service) ConsensusHashAt(_ *http.Request, args *ConsensusHashAtArgs, reply *ConsensusHashAtReply) error {
	h, has, err := svc.eng.GetConsensusHashAt(args.Height)
	if err != nil {
		return err
	}
	if !has {
		return ErrNotFound
	}
	reply.ConsensusHash = h
	return nil
}

type GetNamespaceArgs struct {
	ID string `json:"id"`
}

type GetNamespaceReply struct {
	Namespace *chain.Namespace `json:"namespace"`
}

func (svc *Service) GetNamespace(_ *http.Request, args *GetNamespaceArgs, reply *GetNamespaceReply) error {
	ns, has, err := svc.eng.GetNamespace(args.ID)
	if err != nil {
		return err
	}
	if !has {
		return ErrNotFound
	}
	reply.Namespace = ns
	return nil
}

type GetNameArgs struct {
	Name string `json:"name"`
}

type GetNameReply struct {
	Name *chain.Name `json:"name"`
}

func (svc *Service) GetName(_ *http.Request, args *GetNameArgs, reply *GetNameReply) error {
	n, has, err := svc.eng.GetName(args.Name)
	if err != nil {
		return err
	}
	if !has {
		return ErrNotFound
	}
	reply.Name = n
	return nil
}

type GetNamePreorderArgs struct {
	Hash string `json:"hash"`
}

type GetNamePreorderReply struct {
	Preorder *chain.NamePreorder `json:"preorder"`
}

func (svc *Service) GetNamePreorder(_ *http.Request, args *GetNamePreorderArgs, reply *GetNamePreorderReply) error {
	p, has, err := svc.eng.GetNamePreorder(args.Hash)
	if err != nil {
		return err
	}
	if !has {
		return ErrNotFound
	}
	reply.Preorder = p
	return nil
}

type GetNamesByOwnerArgs struct {
	Address string `json:"address"`
}

type GetNamesByOwnerReply struct {
	Names []*chain.Name `json:"names"`
}

func (svc *Service) GetNamesByOwner(_ *http.Request, args *GetNamesByOwnerArgs, reply *GetNamesByOwnerReply) error {
	names, err := svc.eng.GetNamesByOwner(args.Address)
	if err != nil {
		return err
	}
	reply.Names = names
	return nil
}

type GetNamePriceArgs struct {
	Name string `json:"name"`
}

type GetNamePriceReply struct {
	Price uint64 `json:"price"`
}

func (svc *Service) GetNamePrice(_ *http.Request, args *GetNamePriceArgs, reply *GetNamePriceReply) error {
	price, err := svc.eng.GetNamePrice(args.Name)
	if err != nil {
		return err
	}
	reply.Price = price
	return nil
}
