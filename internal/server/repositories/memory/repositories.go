package memory

func (s *Store) Users() UsersRepository                 { return UsersRepository{s} }
func (s *Store) RefreshTokens() RefreshTokensRepository { return RefreshTokensRepository{s} }
func (s *Store) Wallet() WalletRepository               { return WalletRepository{s} }
func (s *Store) Media() MediaRepository                 { return MediaRepository{s} }
func (s *Store) Contents() ContentsRepository           { return ContentsRepository{s} }
func (s *Store) Stakes() StakesRepository               { return StakesRepository{s} }
func (s *Store) Pending() PendingRepository             { return PendingRepository{s} }
func (s *Store) Chain() ChainRepository                 { return ChainRepository{s} }
